package matching

import "strings"

// SkillSet is a de-duplicated collection of skills compared case-insensitively.
// It keeps the first casing it saw for each skill and the order in which
// skills were added. The zero value is an empty set.
type SkillSet struct {
	skills []string
	index  map[string]struct{}
}

// NewSkillSet normalizes raw skill strings: entries are trimmed, empty
// entries are dropped and case-insensitive duplicates collapse onto the
// first occurrence.
func NewSkillSet(raw []string) SkillSet {
	set := SkillSet{
		skills: make([]string, 0, len(raw)),
		index:  make(map[string]struct{}, len(raw)),
	}
	for _, s := range raw {
		skill := strings.TrimSpace(s)
		if skill == "" {
			continue
		}
		key := skillKey(skill)
		if _, ok := set.index[key]; ok {
			continue
		}
		set.index[key] = struct{}{}
		set.skills = append(set.skills, skill)
	}
	return set
}

// Contains reports whether skill is in the set, ignoring case and
// surrounding whitespace.
func (s SkillSet) Contains(skill string) bool {
	_, ok := s.index[skillKey(skill)]
	return ok
}

// Len returns the number of unique skills.
func (s SkillSet) Len() int {
	return len(s.skills)
}

// Skills returns a copy of the skills in insertion order.
func (s SkillSet) Skills() []string {
	out := make([]string, len(s.skills))
	copy(out, s.skills)
	return out
}

func skillKey(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
