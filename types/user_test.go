package types

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{name: "gym goer", input: "gym_goer", want: RoleGymGoer},
		{name: "personal trainer", input: "personal_trainer", want: RolePersonalTrainer},
		{name: "surrounding whitespace", input: "  gym_goer ", want: RoleGymGoer},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown value", input: "admin", wantErr: true},
		{name: "wrong case", input: "Gym_Goer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRole(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRole(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleGymGoer.Valid() || !RolePersonalTrainer.Valid() {
		t.Fatal("expected both defined roles to be valid")
	}
	if Role("admin").Valid() || Role("").Valid() {
		t.Fatal("expected unknown roles to be invalid")
	}
}
