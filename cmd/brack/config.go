package main

import (
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// Configuration keys
const (
	keySparseTrees  = "sparse-trees"    // default for flag -sparse
	keyTraceAdapter = "tracing.adapter" // "go" selects the Go standard logger
	traceLevelKey   = "tracelevel"      // prefix for per-tracer levels, e.g. tracelevel.brack.cmd
)

// tracerKeys are the tracers of the packages brack is made of.
var tracerKeys = []string{"root", "brack.cmd", "brack.literal", "brack.tree"}

// globalTracerKeys are read by gconf for the global tracers of package gtrace.
var globalTracerKeys = []string{
	"tracinginterpreter", "tracingcommands", "tracingequations", "tracingsyntax",
	"tracinggraphics", "tracingscripting", "tracingcore", "tracingengine",
}

// defaultConfig creates a koanf configuration with defaults for brack. Settings
// from a NestedText file, e.g. ~/.config/brack/config.nt, override them once
// the configuration is initialized:
//
//	sparse-trees: true
//	tracelevel:
//	    brack.literal: Debug
//
func defaultConfig() *koanfadapter.KConf {
	conf := koanfadapter.New(nil, "brack", []string{"nt"})
	conf.Set(keySparseTrees, false)
	for _, key := range globalTracerKeys {
		conf.Set(key, "Error")
	}
	for _, key := range tracerKeys {
		conf.Set(traceLevelKey+"."+key, "Error")
	}
	return conf
}

// initConfig installs conf as the global configuration and sets up tracing:
// the global tracers of gtrace as well as one tracer per key in tracerKeys.
// Tracers use the adapter configured with key "tracing.adapter".
func initConfig(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, traceLevelKey, trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range tracerKeys {
		tracing.Select(key) // create it with its configured level
	}
	return nil
}

// setTraceLevel overrides the configured levels of all tracers of brack.
// An empty level keeps the configuration.
func setTraceLevel(level string) {
	if level == "" {
		return
	}
	l := tracing.TraceLevelFromString(level)
	for _, key := range tracerKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	gtrace.SyntaxTracer.SetTraceLevel(l)
}

// sparseDefault tells if tree literals are expected to contain null entries,
// unless the user says otherwise.
func sparseDefault() bool {
	return gconf.GetBool(keySparseTrees)
}
