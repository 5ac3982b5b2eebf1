package interp

// opAliasDefine sets an alias to a resolved value.
//
//	# value name
func (m *Machine) opAliasDefine(op string, args []string) (err error) {
	value, err := m.Resolve(args[0])
	if err != nil {
		return
	}

	m.State.Alias[args[1]] = value.String()
	return
}

// opAliasDelete removes an alias.
//
//	; name
func (m *Machine) opAliasDelete(op string, args []string) (err error) {
	name := args[0]
	if _, ok := m.State.Alias[name]; !ok {
		err = ErrAliasMissing(name)
		return
	}

	delete(m.State.Alias, name)
	return
}
