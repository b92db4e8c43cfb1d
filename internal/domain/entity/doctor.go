package entity

// Doctor is a static lookup value; doctors are not persisted on their own.
type Doctor struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}
