// Package depgraph serializes an experiment's parameter dependency graph
// to a YAML document.
//
// A measurement run records which parameters were swept or measured and how
// they relate: a measured parameter depends on the parameters it was
// measured against, and may be inferred from raw parameters it was computed
// from. InterDependencies captures that graph and RunDescriber renders it
// as a run description document, keyed by "Parameters".
package depgraph
