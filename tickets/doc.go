// Package tickets simulates a box-office queue with greedy change-making.
//
// What:
//
//   - A ticket costs 25. People queue up paying with a single 25, 50 or
//     100 bill; the clerk starts with an empty drawer and can only give
//     change from bills collected so far.
//   - CanSellAll walks the queue in order and reports whether every buyer
//     receives exact change. Change is made greedily, largest bills first
//     (for 100 the clerk prefers 50+25 over 25+25+25 — the optimal policy
//     here, since 25s are the only way to break a 50).
//
// Edge cases:
//
//   - An empty queue trivially succeeds.
//   - Any unknown denomination makes the sale fail (false), never panic.
//
// Complexity: O(n) time, O(1) memory for n buyers.
package tickets
