// Package i18n provides localization helpers for console output.
//
// It resolves the operator's language and returns x/text printers so pages
// format numbers and fixed labels without branching on language themselves.
package i18n
