// Package capgains computes realized capital gains statistics from a DEGIRO
// account export.
//
// The pipeline works on already decoded ledger rows (see package degiro):
//   - GroupOrders partitions the rows of each order by a normalized order key.
//   - BuildTransaction reduces the rows of one order, including partial fills,
//     currency conversions, fees and broker reversals, into a Transaction.
//   - MatchLots matches a sale against the earlier purchases of the same
//     product, last in first out, and Earnings does it for every sale of a
//     year or sub-period.
//   - TotalFees, TotalDeposits, DepositsByYear and Dividends aggregate the
//     rows that are not part of an order.
//
// Amounts are shopspring decimals, cash flows are signed: purchases and fees
// are negative. Nothing is persisted.
//
// Lot matching is LIFO and does not follow the FIFO order required by most tax
// authorities. The numbers are statistics, not a tax statement.
package capgains
