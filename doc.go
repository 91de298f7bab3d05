// Package folio tracks stock positions grouped into named portfolios and
// values them against live quotes.
//
// The core functionalities include:
//   - Ledger Management: portfolios, assets and buy transactions held in an
//     append-only, in-memory Snapshot that is written back to disk after
//     every successful change.
//   - Persistence: a single human-readable TOML file holding the whole
//     Snapshot, see FileStore.
//   - Valuation: a stateless computation of gain and invested amounts per
//     asset and per portfolio, given a QuoteProvider.
//
// Market data is not owned by this package. The yahoo and eodhd packages
// implement QuoteProvider against their respective web services.
//
// Every transaction is a buy: selling is not modelled, and the gain of an
// asset is the difference between the current value and the cost of all
// recorded purchases.
package folio
