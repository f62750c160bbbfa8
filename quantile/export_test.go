package quantile

// AlongAxisWorkers exposes the bounded-parallel reduction to external tests.
var AlongAxisWorkers = alongAxis

// SortAscending exposes the shared ordering used by every adapter.
var SortAscending = sortAscending
