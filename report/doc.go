// Package report exports a rolling regression run as plain numeric
// sequences for a plotting or reporting consumer.
//
// A Report carries the initial window (actual, fitted and interval bounds
// per day), the rolling steps (actual, forecast and bounds per incoming
// day), the coefficients, the adequacy verdict and the accuracy metrics.
// Non-finite values are written as JSON null.
//
// Write encodes a report as indented JSON, optionally inside a zstd frame.
// Read detects the frame and decodes either form. The report records an
// xxhash checksum of the observations it was computed from; Verify checks a
// dataset against it.
package report
