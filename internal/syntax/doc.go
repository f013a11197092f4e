// Package syntax проверяет структуру потока токенов: за каждым
// конструкционным ключевым словом должны идти ожидаемые пунктуация и
// подвыражения. Дерево разбора не строится, выражения принимаются без
// разбора. Гранулярность восстановления — одна сентенция: первый
// структурный диагноз бросает сентенцию, обход продолжается со
// следующей строки.
package syntax
