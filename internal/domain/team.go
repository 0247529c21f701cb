package domain

import "strings"

// TeamRecord - команда в том виде, в котором её отдаёт источник данных.
// TeamName используется как уникальный ключ при отслеживании мест.
type TeamRecord struct {
	ID       string
	TeamName string
	Score    int
	Members  []MemberRef
}

// Normalize приводит запись к документированным значениям по умолчанию:
// отрицательный счёт становится 0, nil-список участников - пустым,
// участники без имени отбрасываются.
func (t TeamRecord) Normalize() TeamRecord {
	if t.Score < 0 {
		t.Score = 0
	}

	members := make([]MemberRef, 0, len(t.Members))
	for _, m := range t.Members {
		m.Name = strings.TrimSpace(m.Name)
		if m.Name == "" {
			continue
		}
		members = append(members, m)
	}
	t.Members = members

	return t
}

// NormalizeAll нормализует каждую запись и возвращает новый срез.
func NormalizeAll(teams []TeamRecord) []TeamRecord {
	result := make([]TeamRecord, 0, len(teams))
	for _, t := range teams {
		result = append(result, t.Normalize())
	}
	return result
}

// MemberName возвращает имя участника по индексу или fallback, если его нет.
func (t TeamRecord) MemberName(i int, fallback string) string {
	if i < 0 || i >= len(t.Members) {
		return fallback
	}
	return t.Members[i].Name
}

// MaxMembers - максимальное число участников в команде.
const MaxMembers = 2
