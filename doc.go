// Package hoard implements the investment engine of an idle strategy game:
// a portfolio of gold and polymorphic investments whose values grow,
// stagnate, or collapse under category-specific economic rules.
//
// The core functionalities include:
//   - Currency: an arbitrary-magnitude gold value with exact decimal
//     arithmetic, so that centuries of compounding never lose precision.
//   - Investments: a common entity (id, name, category, risk tier, prices)
//     paired with one category behavior (Property, Trade or Financial)
//     fixed at construction. Each behavior implements the valuation
//     contract: projected returns, event hook, liquidity gate, risk
//     modifier and base return rate.
//   - Portfolio: owns the gold balance and the ordered investments, and
//     implements the aggregate operations: valuation totals, income
//     projection, event broadcast, and the bulk time advance ("slumber")
//     that recomputes every holding and banks the realized gains in one
//     update.
//   - Persistence: encoding and decoding the whole portfolio to a
//     human-readable JSONL savegame, with currency stored as
//     mantissa/exponent pairs.
//
// This package serves as the foundational logic for the `hoard`
// command-line tool; all operations are synchronous and act on explicitly
// passed values, with no global state.
package hoard
