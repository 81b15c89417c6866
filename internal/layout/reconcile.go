package layout

// Reconcile merges components newly introduced by the default config into
// a previously stored, user-customized config, mutating stored in place.
// Each breakpoint variant is reconciled independently; a variant absent
// on either side is skipped.
//
// Whether reconciliation applies at all is the caller's decision: a stored
// config that fails validation, or whose version is newer than the
// default's, must be discarded in favor of a deep copy of the default
// rather than partially merged.
//
// Reconciliation is idempotent: running it again against the same default
// finds nothing missing and changes nothing.
func Reconcile(stored, def *Config) {
	if stored == nil || def == nil {
		return
	}
	for _, bp := range Breakpoints() {
		reconcileVariant(stored.Variant(bp), def.Variant(bp))
	}
}

// reconcileVariant inserts components present in def but absent from
// stored. Missing components are enumerated in the default's
// deterministic order (lists in sequence, items in sequence), so
// insertion order for ties matches the default's left-to-right,
// top-to-bottom reading.
func reconcileVariant(stored, def Layout) {
	if stored == nil || def == nil {
		return
	}
	have := make(map[string]bool)
	for _, name := range stored.ComponentNames() {
		have[name] = true
	}
	for _, defList := range def {
		for originIndex, item := range defList.Items {
			if have[item.ComponentName] {
				continue
			}
			have[item.ComponentName] = true
			i := stored.indexOf(defList.ContainerName)
			if i < 0 {
				// The user deleted the origin container; there is nowhere
				// to put the component, so it is dropped. No container is
				// fabricated.
				continue
			}
			at := originIndex
			if at > len(stored[i].Items) {
				// Origin index does not fit the customized list; fall back
				// to the front.
				at = 0
			}
			stored[i].Items = insertElement(stored[i].Items, at, item.Clone())
		}
	}
}
