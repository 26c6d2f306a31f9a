// Package fileutil holds small file helpers shared by report output, config
// scaffolding, and mail sources.
package fileutil
