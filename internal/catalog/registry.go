package catalog

// Build assembles the complete syscall registry from every category file.
// Each registerXxx call runs independently; a name collision inside one
// category is a programming error and panics immediately via Register.
func Build() *Registry {
	r := NewRegistry()
	registerFile(r)
	registerNetwork(r)
	registerMemory(r)
	registerSignal(r)
	registerProcess(r)
	registerIPC(r)
	registerTime(r)
	registerThread(r)
	registerSysinfo(r)
	registerDebug(r)
	registerSecurity(r)
	registerMisc(r)
	return r
}
