package frontend

// Ingest exposes ingest for testing.
var Ingest = ingest

// Materialize exposes materialize for testing.
var Materialize = materialize

// ChildEnvironment exposes childEnvironment for testing.
var ChildEnvironment = childEnvironment

// MaxLineSize exposes maxLineSize for testing.
const MaxLineSize = maxLineSize
