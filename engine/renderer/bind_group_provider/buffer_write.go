package bind_group_provider

// BufferWrite describes a single GPU buffer write operation targeting a specific binding
// on a BindGroupProvider at a given byte offset.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}

// NewUniformWrite builds a BufferWrite of data at offset 0 of the given binding.
//
// Parameters:
//   - provider: the provider owning the target buffer
//   - binding: the binding index of the target buffer
//   - data: the bytes to upload
//
// Returns:
//   - BufferWrite: the staged write
func NewUniformWrite(provider BindGroupProvider, binding int, data []byte) BufferWrite {
	return BufferWrite{Provider: provider, Binding: binding, Data: data}
}
