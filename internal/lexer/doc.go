// Package lexer реализует построчный лексический сканер: исходный текст
// разбивается на физические строки, каждая строка превращается в поток
// токенов. Ошибки никогда не останавливают сканирование — они уходят в
// diag.Reporter, а сканер продолжает со следующего символа или строки.
package lexer
