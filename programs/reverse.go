package programs

// Reverse returns the program that undoes p: commands in reverse order, each
// replaced by its mirror.
func Reverse(p *Program) *Program {
	commands := make([]Command, len(p.commands))
	for i, c := range p.commands {
		commands[len(commands)-1-i] = mirror[c]
	}
	return &Program{
		commands: commands,
	}
}

func ReverseSource(src string) (string, error) {
	p, err := Parse(src)
	if err != nil {
		return "", err
	}
	return Reverse(p).String(), nil
}
