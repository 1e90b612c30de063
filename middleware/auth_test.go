package middleware

import (
	"testing"

	"Sparkle/Models"
)

func TestCapabilitiesFor(t *testing.T) {
	cases := []struct {
		permission int
		want       Capabilities
	}{
		{Models.PermissionClient, Capabilities{}},
		{Models.PermissionInspector, Capabilities{CanExport: true}},
		{Models.PermissionAdmin, Capabilities{CanExport: true, CanDelete: true, CanManage: true}},
		{Models.PermissionOwner, Capabilities{CanExport: true, CanDelete: true, CanManage: true}},
	}

	for _, tc := range cases {
		got := CapabilitiesFor(Models.User{Permission: tc.permission})
		if got != tc.want {
			t.Errorf("permission %d: got %+v, want %+v", tc.permission, got, tc.want)
		}
	}
}
