// Package bookkeeper provides the transaction export engine of a
// personal finance ledger: it serializes transactions, accounts and
// categories to QIF (Quicken Interchange Format) and to JSON.
//
// The core functionalities include:
//   - Semantic Normalization: deriving format-independent values from a
//     fully joined transaction view (transfer detection, signed amounts,
//     synthesized payee/category strings, reverse-viewpoint rendering).
//   - QIF Rendering: tag-prefixed, line-oriented text blocks for
//     transactions, account headers and the category list.
//   - JSON Rendering: streaming, order-preserving JSON documents for
//     the same data, including attachments and custom fields.
//   - Ledger Store: an in-memory, read-only store of accounts,
//     currencies, categories and transactions, decoded from a
//     human-readable JSONL file.
//
// This package serves as the foundational logic for the `bkx`
// command-line tool. Rendering is pure: each call is a function of its
// inputs and the read-only stores, and performs no I/O of its own.
package bookkeeper
