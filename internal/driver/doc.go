// Package driver оркестрирует пайплайн анализа: лексика → (гейт) →
// структура → (гейт) → семантика, с границей отказов вокруг всего
// прогона. Здесь же живут параллельный обход директорий и дисковый кэш
// результатов.
package driver
