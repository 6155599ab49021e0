// Package logger records parse events as newline delimited JSON and
// summarizes them into reports.
package logger
