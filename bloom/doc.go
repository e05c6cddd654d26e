package bloom

/*

# Bloom filter with a cycled hash strategy palette

This package provides an in-memory Bloom filter: m buckets (one bit each) and
k probe positions per value.

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", then the value was never
  inserted (since the last Clear).
- If the filter says "maybe present", then the value may or may not have been
  inserted (false positives are possible).

There is no removal, no exact count of distinct members, and no persistent
format. Len counts Insert calls, duplicates included.

## Probe derivation

Rather than one hash function with k seeds, every probe position j is assigned
a strategy from a small palette, palette[j % len(palette)]. DefaultPalette is:

	xxhash   xxhash64(value)
	md5      fold(md5(le64(xxhash64(value))))
	sha256   fold(sha256(le64(xxhash64(value))))

fold reads the digest as acc = acc<<8 | b over every byte. The uint64
accumulator wraps, so only the last eight digest bytes matter. The bucket for
position j is hash % m.

Nothing is seeded per process: the same value, position and filter parameters
give the same bucket in every run.

## Probes beyond the palette

When k exceeds the palette size positions j and j+len(palette) share a
strategy and therefore a bucket. The filter then behaves like one with
len(palette) probes while ErrorChance still assumes k independent ones.

WithSaltedProbes appends the palette round, j / len(palette), to the digest
input for rounds after the first. The first round is unchanged, so filters
with k <= len(palette) map values identically either way. For larger k the
salted and unsalted filters set different buckets for the same value and must
not be mixed.

## Structured values

InsertValue and CheckValue accept any CBOR encodable Go value and hash its
core deterministic CBOR encoding. Equal values, including maps built in
different orders, encode identically.

## Concurrency

Filter is single threaded. SyncFilter wraps one with a read/write lock so that
every insert publishes all k of its buckets at once.

*/
