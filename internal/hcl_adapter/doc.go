// Package hcl_adapter implements config.Loader for league files written in
// HCL. It decodes the raw blocks with gohcl, evaluates each attribute into a
// cty.Value and converts that into the format-agnostic config.League.
package hcl_adapter
