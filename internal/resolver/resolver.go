// Package resolver maps a content node to the page that renders it.
//
// Three independent signals can tie a node to a page, and they are not
// equally trustworthy. The resolver checks them in strict priority order
// and stops at the first match:
//
//  1. ownerNodeId — the page declared the node explicitly. Sanctioned
//     mechanism, exactly one match expected.
//  2. context.id — legacy convention of stashing the node id in the page
//     context. Ambiguous when several pages declare the same id; the page
//     with the smallest path wins.
//  3. query tracking — the page's data query was observed reading the
//     node. Lowest confidence: the index may be incomplete while a build
//     is still in progress.
//
// Resolution never mutates the registry and performs no I/O; for a fixed
// registry state the same node id always yields the same outcome.
package resolver

import "github.com/sitewright/sitewright/internal/domain"

// Resolve maps a node id to a resolution outcome against the given
// registry state
func Resolve(id domain.NodeID, reg domain.Registry) domain.Resolution {
	pages := reg.Pages()

	for i := range pages {
		if pages[i].OwnerNodeID == id {
			return domain.Resolution{Page: &pages[i], Kind: domain.MatchOwnerNodeID}
		}
	}

	// Pages arrive in ascending path order, so the first context match is
	// deterministic even when several pages declare the same id.
	for i := range pages {
		if ctxID, ok := pages[i].ContextNodeID(); ok && ctxID == id {
			return domain.Resolution{Page: &pages[i], Kind: domain.MatchContextID}
		}
	}

	if tracked := reg.QueryTracking(id); len(tracked) > 0 {
		// Tie-break among tracked candidates: lexicographically smallest
		// path. QueryTracking returns sorted paths.
		page := pageForPath(pages, tracked[0])
		return domain.Resolution{Page: &page, Kind: domain.MatchQueryTracking}
	}

	return domain.Resolution{Kind: domain.MatchNone}
}

// pageForPath returns the registered page at path, or a bare page carrying
// only the path when the tracking index refers to a page the registry no
// longer lists.
func pageForPath(pages []domain.Page, path string) domain.Page {
	for i := range pages {
		if pages[i].Path == path {
			return pages[i]
		}
	}
	return domain.Page{Path: path}
}
