// Package services implements the driving port interfaces.
// Services contain the core analysis logic: text extraction,
// review/validation and pipeline composition.
//
// Services are stateless apart from rule tables fixed at construction,
// so every method is safe for concurrent use.
package services
