// Package bookgen builds deterministic orderbook.Book fixtures shaped like
// classic graph topologies — cycles, chains, hub-and-spoke, fully
// connected markets, and two-sided markets — for exercising the graph,
// search, and pathfinder packages without hand-assembling every order.
//
// A cycle of currencies is an arbitrage loop (USD->EUR->GBP->USD); a path
// is a conversion chain with no way back; a star is a hub currency every
// other currency trades directly against; a complete graph is a fully
// connected market where every pair trades directly; a bipartite market
// separates two asset classes (e.g. fiat vs. stablecoins) that only trade
// across the partition.
//
// Every Constructor emits orders in a stable, documented order so that
// two BuildBook calls over the same currencies and options produce books
// with the same pairs, rates, and bounds in the same sequence. Each order
// receives a freshly generated ID from orderbook.NewOrder, so order IDs
// differ between calls.
package bookgen
