// Package log builds the structured loggers used across scamscan.
//
// Analyzed content routinely carries personal data: contact e-mails in job
// postings, phone numbers in social posts, author handles. PIIHandler wraps
// any slog.Handler and redacts that data before a record is written, so
// logs can be shared without leaking the people behind the content.
//
// # Redaction
//
//   - Attributes whose key names a content body or contact field (text,
//     content, email, phone, author, ...) are replaced with MaskValue.
//   - E-mail addresses and phone numbers inside any other string value are
//     replaced in place with [email] and [phone].
//   - Credentials (password, token, secret) are masked by key.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Warn("unit rejected", "unit", id, "text", body) // text is masked
//	slog.SetDefault(logger)
package log
