// Package fuzztests houses Go fuzz harnesses that exercise the scanner and
// the parser on arbitrary input. Their goal is to guard against panics and
// hangs in error recovery.
//
// Назначение: прогонять байты через source -> scanner -> parser с полным
// набором коллабораторов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
