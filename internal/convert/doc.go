package convert

// Package convert implements the conversion driver: it validates the current
// selection, checks the encoder once per batch, runs one encoder invocation per
// file in selection order, and reports every step as a model.Event. The busy
// flag in model.State keeps a single batch running at a time.
