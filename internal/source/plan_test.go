package source

import "testing"

func TestPlanUnpack(t *testing.T) {
	cases := []struct {
		name       string
		top        []EntryMeta
		wantPlan   bool
		wantPrefix string
	}{
		{name: "empty package", top: nil},
		{name: "single file", top: []EntryMeta{{Path: "game.zip", Size: 10}}},
		{
			name:       "single container",
			top:        []EntryMeta{{Path: "MyVN", Dir: true}},
			wantPlan:   true,
			wantPrefix: "MyVN",
		},
		{
			name: "container plus file",
			top:  []EntryMeta{{Path: "MyVN", Dir: true}, {Path: "readme.txt"}},
		},
		{
			name: "two containers",
			top:  []EntryMeta{{Path: "a", Dir: true}, {Path: "b", Dir: true}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := PlanUnpack(tc.top)
			if plan.Flatten != tc.wantPlan {
				t.Fatalf("flatten = %v, want %v", plan.Flatten, tc.wantPlan)
			}
			if plan.RootPrefix != tc.wantPrefix {
				t.Fatalf("prefix = %q, want %q", plan.RootPrefix, tc.wantPrefix)
			}
			if tc.wantPlan && plan.Root() != tc.wantPrefix {
				t.Fatalf("root = %q, want %q", plan.Root(), tc.wantPrefix)
			}
			if !tc.wantPlan && plan.Root() != "" {
				t.Fatalf("root = %q, want empty", plan.Root())
			}
		})
	}
}
