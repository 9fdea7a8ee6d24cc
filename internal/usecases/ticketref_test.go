package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MyCarrier-DevOps/branchpad/internal/domain"
)

func TestResolveTicketReference(t *testing.T) {
	tests := []struct {
		name       string
		link       string
		id         string
		projectKey string
		want       domain.TicketReference
		wantFound  bool
	}{
		{
			name:       "key extracted from browse URL",
			link:       "https://host/browse/SYNTH-23559",
			id:         "",
			projectKey: "SYNTH",
			want:       "SYNTH-23559",
			wantFound:  true,
		},
		{
			name:       "bare digits synthesized with default project key",
			link:       "",
			id:         "23559",
			projectKey: "SYNTH",
			want:       "SYNTH-23559",
			wantFound:  true,
		},
		{
			name:       "link wins over a different id",
			link:       "https://host/browse/SYNTH-1",
			id:         "OTHER-2",
			projectKey: "SYNTH",
			want:       "SYNTH-1",
			wantFound:  true,
		},
		{
			name:       "lowercase key is uppercased",
			link:       "",
			id:         "synth-42",
			projectKey: "SYNTH",
			want:       "SYNTH-42",
			wantFound:  true,
		},
		{
			name:       "key embedded in surrounding prose",
			link:       "",
			id:         "please look at infra_2-77 today",
			projectKey: "SYNTH",
			want:       "INFRA_2-77",
			wantFound:  true,
		},
		{
			name:       "first key wins when several present",
			link:       "see ABC-1 and DEF-2",
			id:         "",
			projectKey: "SYNTH",
			want:       "ABC-1",
			wantFound:  true,
		},
		{
			name:       "digits with surrounding whitespace",
			link:       "",
			id:         "  123 45  ",
			projectKey: "SYNTH",
			want:       "SYNTH-12345",
			wantFound:  true,
		},
		{
			name:       "non-digit id with no key yields nothing",
			link:       "",
			id:         "abc",
			projectKey: "SYNTH",
			want:       "",
			wantFound:  false,
		},
		{
			name:       "prefix without hyphen is not a key",
			link:       "",
			id:         "synth1234",
			projectKey: "SYNTH",
			want:       "",
			wantFound:  false,
		},
		{
			name:       "key split by punctuation is not whole-word",
			link:       "",
			id:         "SYNTH -1",
			projectKey: "SYNTH",
			want:       "",
			wantFound:  false,
		},
		{
			name:       "both fields empty",
			link:       "",
			id:         "",
			projectKey: "SYNTH",
			want:       "",
			wantFound:  false,
		},
		{
			name:       "digits fallback needs a project key",
			link:       "",
			id:         "123",
			projectKey: "",
			want:       "",
			wantFound:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ResolveTicketReference(tt.link, tt.id, tt.projectKey)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTicketReference_ResultSatisfiesInvariant(t *testing.T) {
	inputs := []struct{ link, id string }{
		{"https://jira.example.com/browse/OPS-9", ""},
		{"", "ops-9"},
		{"", " 42 "},
		{"random TEXT with A_B-3 inside", ""},
	}

	for _, in := range inputs {
		ref, found := ResolveTicketReference(in.link, in.id, "OPS")
		if found {
			assert.True(t, ref.IsValid(), "resolved reference %q must match the canonical pattern", ref)
		}
	}
}
