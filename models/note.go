package models

// Note is the persisted entity. ID is assigned by the store on insert.
type Note struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// NoteIn is the request body for create and update.
// Text is a pointer so an absent field can be told apart from "".
type NoteIn struct {
	Text *string `json:"text" validate:"required"`
}

// NoteOut is the response shape for a single note.
type NoteOut struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}

// NoteIDParam is the validated form of the :id path segment.
type NoteIDParam struct {
	ID string `json:"id" validate:"required,noteid"`
}

func NewNoteOut(note *Note) NoteOut {
	return NoteOut{ID: note.ID, Text: note.Text}
}

// NewNoteOutList never returns nil so an empty table encodes as [].
func NewNoteOutList(notes []Note) []NoteOut {
	out := make([]NoteOut, 0, len(notes))
	for i := range notes {
		out = append(out, NewNoteOut(&notes[i]))
	}
	return out
}
