// Package cleaning implements the order cleaning pipeline.
//
// A Pipeline runs a fixed sequence of steps over one orders.Table:
//
//  1. remove_duplicates       exact duplicate rows
//  2. clean_whitespace        trim and collapse text fields
//  3. standardize_emails      lower-case, drop invalid addresses
//  4. clean_phone_numbers     DDD-DDD-DDDD or absent
//  5. standardize_dates       YYYY-MM-DD, drop unparseable and future dates
//  6. clean_prices            positive, two decimals
//  7. clean_quantities        positive integers
//  8. standardize_categories  lookup table, title-case fallback
//  9. standardize_status      lookup table, passthrough fallback
//
// Each step takes the table, transforms every row and returns the table with
// the number of rows (or distinct values) it affected. Invalid values become
// absent; no step returns an error. Steps are idempotent: running the
// pipeline over its own output changes nothing and logs nothing.
package cleaning
