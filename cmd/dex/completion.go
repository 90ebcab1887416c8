package main

import (
	"bytes"
	"dex/internal/util"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
)

type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh,fish" help:"Shell type (bash, zsh, fish)"`
}

func (cmd *CompletionCmd) Run(g *Globals) error {
	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(appName),
		kong.Description(appDescription),
	)
	if err != nil {
		return err
	}

	node := parser.Model.Node

	switch cmd.Shell {
	case "bash":
		assert.Success(g.Out.Write(bashCompletion(node)))
	case "zsh":
		var b bytes.Buffer
		fmt.Fprintf(&b, "#compdef %s\n\nautoload -U +X bashcompinit && bashcompinit\n\n", appName)
		b.Write(bashCompletion(node))
		assert.Success(g.Out.Write(b.Bytes()))
	case "fish":
		assert.Success(g.Out.Write(fishCompletion(node)))
	default:
		return fmt.Errorf("unsupported shell: %s", cmd.Shell)
	}

	return nil
}

func visibleChildren(n *kong.Node) []*kong.Node {
	var out []*kong.Node
	for _, c := range n.Children {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

func commandNames(n *kong.Node) []string {
	return append([]string{n.Name}, n.Aliases...)
}

func flagWords(flags []*kong.Flag) []string {
	var out []string
	for _, f := range flags {
		if f.Hidden {
			continue
		}
		out = append(out, "--"+f.Name)
		if f.Short != 0 {
			out = append(out, "-"+string(f.Short))
		}
	}
	return out
}

// dynamicSource returns the shell command named in a positional's
// completion tag, if any.
func dynamicSource(n *kong.Node) string {
	for _, p := range n.Positional {
		if src := p.Tag.Get("completion"); src != "" {
			return src
		}
	}
	return ""
}

func bashCompletion(app *kong.Node) []byte {
	var b bytes.Buffer
	fn := "_" + appName

	var top []string
	for _, c := range visibleChildren(app) {
		top = append(top, commandNames(c)...)
	}
	top = append(top, flagWords(app.Flags)...)

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    if [[ $COMP_CWORD -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(top, " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	for _, c := range visibleChildren(app) {
		words := flagWords(c.Flags)
		for _, sub := range visibleChildren(c) {
			words = append(words, commandNames(sub)...)
		}
		fmt.Fprintf(&b, "        %s)\n", strings.Join(commandNames(c), "|"))
		if src := dynamicSource(c); src != "" {
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s $(%s 2>/dev/null)\" -- \"$cur\"))\n", strings.Join(words, " "), src)
		} else {
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(words, " "))
		}
		b.WriteString("            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, appName)
	return b.Bytes()
}

func fishCompletion(app *kong.Node) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "complete -c %s -f\n", appName)
	for _, f := range app.Flags {
		if !f.Hidden {
			fmt.Fprintf(&b, "complete -c %s -l %s -d %q\n", appName, f.Name, f.Help)
		}
	}

	for _, c := range visibleChildren(app) {
		fmt.Fprintf(&b, "complete -c %s -n __fish_use_subcommand -a %s -d %q\n", appName, c.Name, c.Help)
		seen := strings.Join(commandNames(c), " ")
		for _, f := range c.Flags {
			if f.Hidden {
				continue
			}
			fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s' -l %s -d %q\n", appName, seen, f.Name, f.Help)
		}
		for _, sub := range visibleChildren(c) {
			fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s' -a %s -d %q\n", appName, seen, sub.Name, sub.Help)
		}
		if src := dynamicSource(c); src != "" {
			fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s' -a '(%s 2>/dev/null)'\n", appName, seen, src)
		}
	}
	return b.Bytes()
}
