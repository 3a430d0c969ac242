package source

// UnpackPlan records whether materialization should strip one redundant
// top-level directory layer from the package.
type UnpackPlan struct {
	Flatten    bool
	RootPrefix string
}

// PlanUnpack computes the unpack plan from the package's top-level entries.
// Flattening applies only when the package consists of exactly one
// container entry; a single file, or any mix of entries, is used as-is.
func PlanUnpack(top []EntryMeta) UnpackPlan {
	if len(top) != 1 || !top[0].Dir {
		return UnpackPlan{}
	}
	return UnpackPlan{Flatten: true, RootPrefix: top[0].Path}
}

// Root returns the slash-separated prefix the plan selects as the package
// root: the flattened container, or "" for the package root itself.
func (p UnpackPlan) Root() string {
	if p.Flatten {
		return p.RootPrefix
	}
	return ""
}
