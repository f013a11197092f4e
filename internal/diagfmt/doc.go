// Package diagfmt рендерит диагностики и токены: человекочитаемый вывод
// с цветом и кареткой, JSON для машинной обработки.
package diagfmt
