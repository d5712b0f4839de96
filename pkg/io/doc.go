// Package io provides JSON import and export for scenario traces.
//
// # Overview
//
// A trace records what the engine materialized after every step of a
// scenario run. Exported traces can be diffed between releases, attached to
// bug reports, or re-imported by the CLI for display without replaying.
//
// # JSON Format
//
//	{
//	  "id": "3f0c…",
//	  "scenario": "carousel",
//	  "hash": "9a1b…",
//	  "direction": "horizontal",
//	  "created_at": "2026-01-02T15:04:05Z",
//	  "frames": [
//	    {
//	      "step": 0,
//	      "action": "layout",
//	      "offset": 24850,
//	      "page": 0,
//	      "visible": [{"index": 0, "origin": 0, "length": 300}],
//	      "events": [{"kind": "display", "index": 0}]
//	    }
//	  ],
//	  "stats": {"steps": 2, "cells_created": 2, "high_water": 1, "max_visible": 1}
//	}
//
// Origins are relative to the viewport start along the main axis.
//
// # Import
//
// Use [ImportJSON] to read a trace from a file path, or [ReadJSON] to read
// from any io.Reader. Both check that frame steps increase and that every
// frame's visible indices are strictly consecutive.
//
// # Export
//
// Use [ExportJSON] to write a trace to a file, or [WriteJSON] to write to
// any io.Writer. The output is indented for readable diffs.
package io
