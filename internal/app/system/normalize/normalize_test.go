package normalize

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"USER@EXAMPLE.COM", "user@example.com"},
		{"  Ana@Empresa.Com.Br  ", "ana@empresa.com.br"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Email(tt.input); got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"João Silva", "João Silva"},
		{"  João Silva  ", "João Silva"},
		{"", ""},
		{"MAIÚSCULO", "MAIÚSCULO"}, // Name preserves case
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTaskStatus(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"concluida", "concluída"},
		{"Concluída", "concluída"},
		{"nao iniciada", "não iniciada"},
		{"  EM ANDAMENTO ", "em andamento"},
		{"congelada", "congelada"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := TaskStatus(tt.input); got != tt.want {
				t.Errorf("TaskStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPriority(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"media", "média"},
		{"MÉDIA", "média"},
		{"Baixa", "baixa"},
		{" alta ", "alta"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Priority(tt.input); got != tt.want {
				t.Errorf("Priority(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
