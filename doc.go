package ivms101

// Package ivms101 provides:
//
// - A typed schema for IVMS101 "Travel Rule" identity messages (originator,
//   beneficiary and VASP records built from natural and legal persons)
// - Strict JSON decoding (camelCase keys, unknown fields rejected, absent
//   optionals omitted) via DecodeMessage/EncodeMessage
// - Shape-preserving multiplicity containers OneOrMany/ZeroOrMany that accept
//   a bare value or a list on the wire and re-emit whichever was given
// - A pure validation engine enforcing the IVMS101 business rules C1-C11;
//   every violation message ends with the literal tag "(IVMS101 C<n>)"
//
// Design policy:
// - Keep the public schema API in the root package; LEI and GLEIF
//   registration-authority checks live under lei/, the CLI under cmd/ivms101.
// - Shape errors (length bounds, empty required lists, unmatched variants)
//   surface at construction/decode time; business-rule errors surface from
//   Validate only. The two never mix.
// - Validation is on demand, bottom-up and first-failure-wins.
//
// Typical usage:
//
//	msg, err := ivms101.DecodeMessage(data)
//	if err != nil { ... }        // shape error: the input is not IVMS101
//	if err := msg.Validate(); err != nil { ... } // business-rule violation
//
//	wire, err := ivms101.EncodeMessage(msg)
