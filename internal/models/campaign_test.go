package models

import "testing"

func TestIsValidCampaignTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{CampaignStatusRequested, CampaignStatusActive, true},
		{CampaignStatusActive, CampaignStatusCompleted, true},

		// No skipping or reversing
		{CampaignStatusRequested, CampaignStatusCompleted, false},
		{CampaignStatusActive, CampaignStatusRequested, false},
		{CampaignStatusCompleted, CampaignStatusActive, false},
		{CampaignStatusCompleted, CampaignStatusRequested, false},

		{"nonexistent", CampaignStatusActive, false},
		{CampaignStatusActive, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidCampaignTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidCampaignTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllCampaignStatusesHaveTransitionEntry(t *testing.T) {
	for _, status := range []string{CampaignStatusRequested, CampaignStatusActive, CampaignStatusCompleted} {
		if _, ok := ValidCampaignTransitions[status]; !ok {
			t.Errorf("status %q missing from ValidCampaignTransitions map", status)
		}
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	if transitions := ValidCampaignTransitions[CampaignStatusCompleted]; len(transitions) != 0 {
		t.Errorf("completed should have no transitions, got %v", transitions)
	}
}
