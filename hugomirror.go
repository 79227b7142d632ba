// Package hugomirror converts a static HTML mirror of a WordPress site into
// Hugo content bundles. It extracts the main content region of each mirrored
// page, rewrites WordPress-specific markup, and writes front-matter-annotated
// content files alongside a copy of the uploaded media tree.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, readability/).
package hugomirror
