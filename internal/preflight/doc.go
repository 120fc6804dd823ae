// Package preflight provides readiness checks for the filesystem paths and
// stores readtrack depends on.
//
// The CLI "readtrack doctor" command runs RunAll and renders the results.
// Checks never create files or directories; a path that has not been created
// yet is reported as passing with an explanatory detail where the first
// command would create it anyway.
package preflight
