package constants

// Tab is the mutually-exclusive status view selected by the caller.
type Tab string

// Stable values (these exact strings travel over the API).
const (
	TabEmCurso    Tab = "em_curso"   // at least one item still undelivered
	TabPendentes  Tab = "pendentes"  // on hold, driven purely by the pendente flag
	TabConcluidos Tab = "concluidos" // every item fully delivered
)

// IsValid reports whether t is one of the known tabs.
func (t Tab) IsValid() bool {
	switch t {
	case TabEmCurso, TabPendentes, TabConcluidos:
		return true
	}
	return false
}
