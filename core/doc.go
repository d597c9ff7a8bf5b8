// Package core defines the shared types used across nlogcolor.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and the Field type for zero-allocation
// structured key-value pairs.
//
// An Entry also carries the highlight ranges a formatter annotates while
// rendering it: ColorStart and ColorEnd hold byte offsets into the
// formatted record, and a handler only trusts them when both slices have
// the same length. Handlers clear the ranges with ResetColorRanges before
// every format so stale offsets from a reused entry never leak into the
// next record.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must
// return it with PutEntry once the handler has consumed it.
package core
