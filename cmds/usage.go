package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p.Output, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share one *Command; print each once under its first name
	names := make(map[*Command][]string)
	var order []*Command
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		cmd := commands[name]
		if cmd == nil {
			continue
		}
		if _, ok := names[cmd]; !ok {
			order = append(order, cmd)
		}
		names[cmd] = append(names[cmd], name)
	}

	indent := strings.Repeat("  ", depth)
	for _, cmd := range order {
		line := indent + strings.Join(names[cmd], ", ")
		if cmd.Func.IsValid() {
			for i := range cmd.Func.Type().NumIn() {
				line += fmt.Sprintf(" <%v>", cmd.Func.Type().In(i))
			}
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			printCommands(w, cmd.Subs, depth+1)
		}
	}
}
