package filechooser

// Callback receives the outcome of a dialog run. Exactly one of the two
// methods is invoked, synchronously, at the point the dialog closes.
type Callback interface {
	// OnFileChosen receives the selected file.
	OnFileChosen(file *FileHandle)

	// OnCancellation fires when the dialog closes without a selection,
	// whether dismissed by the user or torn down by the toolkit.
	OnCancellation()
}

// CallbackFuncs adapts plain functions to the Callback interface. Nil
// fields are no-ops.
type CallbackFuncs struct {
	Chosen    func(file *FileHandle)
	Cancelled func()
}

func (c CallbackFuncs) OnFileChosen(file *FileHandle) {
	if c.Chosen != nil {
		c.Chosen(file)
	}
}

func (c CallbackFuncs) OnCancellation() {
	if c.Cancelled != nil {
		c.Cancelled()
	}
}
