// Package sema реализует эвристическую проверку «определено до
// использования» прямо над потоком токенов: первая пасса собирает плоские
// множества имён, вторая помечает чтения и вызовы без достижимого
// определения. Области видимости не моделируются.
package sema
