package convert

import (
	"sort"
	"strings"
)

// print renders a Script Tree as indented XML-like markup, walking the tree
// depth-first starting at the root's direct children.
func print(tree *ScriptTree, indentWidth int) string {
	var sb strings.Builder
	root := tree.Node(tree.Root())
	for _, child := range root.Children {
		printNode(&sb, tree, child, 0, indentWidth)
	}
	return sb.String()
}

func printNode(sb *strings.Builder, tree *ScriptTree, id NodeID, depth, indentWidth int) {
	node := tree.Node(id)
	indent := strings.Repeat(" ", depth*indentWidth)

	printNodeStart(sb, node, indent)

	for _, child := range node.Children {
		printNode(sb, tree, child, depth+1, indentWidth)
	}

	printNodeEnd(sb, node, indent)
}

func printNodeStart(sb *strings.Builder, node *ScriptNode, indent string) {
	sb.WriteString(indent)

	switch node.Kind {
	case ScriptText:
		lines := strings.Split(node.Literal, "\n")
		for i, line := range lines {
			sb.WriteString(line)
			if i != len(lines)-1 {
				sb.WriteString("\n")
				sb.WriteString(indent)
			}
		}
	case ScriptHeading:
		sb.WriteString("<heading>")
	case ScriptParagraph:
		sb.WriteString("<paragraph>")
	case ScriptSection:
		sb.WriteString("<section>")
	case ScriptImage:
		sb.WriteString("<image src=\"" + node.Src + "\">")
	case ScriptQuote:
		sb.WriteString("<quote>")
	case ScriptList:
		if node.Ordered {
			sb.WriteString("<list ordered=\"true\">")
		} else {
			sb.WriteString("<list>")
		}
	case ScriptListItem:
		sb.WriteString("<list-item>")
	case ScriptHorizontalRule:
		sb.WriteString("<horizontal-rule/>")
	case ScriptLink:
		sb.WriteString("<link target=\"" + node.Target + "\">")
	case ScriptBold:
		sb.WriteString("<b>")
	case ScriptItalic:
		sb.WriteString("<i>")
	case ScriptCode:
		sb.WriteString("<code")
		if node.HasLang {
			sb.WriteString(" language=\"" + node.Language + "\"")
		}
		sb.WriteString(">")
	case ScriptTable:
		sb.WriteString("<table>")
	case ScriptTableHeaderRow:
		sb.WriteString("<table-header-row>")
	case ScriptTableRow:
		sb.WriteString("<table-row>")
	case ScriptTableCell:
		sb.WriteString("<table-cell>")
	case ScriptFunction:
		sb.WriteString("<" + node.Name)
		sb.WriteString(printSortedAttrs(node.Params))
		sb.WriteString(">")
	}

	sb.WriteString("\n")
}

func printNodeEnd(sb *strings.Builder, node *ScriptNode, indent string) {
	var tag string
	switch node.Kind {
	case ScriptHeading:
		tag = "</heading>"
	case ScriptParagraph:
		tag = "</paragraph>"
	case ScriptSection:
		tag = "</section>"
	case ScriptImage:
		tag = "</image>"
	case ScriptQuote:
		tag = "</quote>"
	case ScriptList:
		tag = "</list>"
	case ScriptListItem:
		tag = "</list-item>"
	case ScriptLink:
		tag = "</link>"
	case ScriptBold:
		tag = "</b>"
	case ScriptItalic:
		tag = "</i>"
	case ScriptCode:
		tag = "</code>"
	case ScriptTable:
		tag = "</table>"
	case ScriptTableHeaderRow:
		tag = "</table-header-row>"
	case ScriptTableRow:
		tag = "</table-row>"
	case ScriptTableCell:
		tag = "</table-cell>"
	case ScriptFunction:
		tag = "</" + node.Name + ">"
	default:
		return
	}

	sb.WriteString(indent)
	sb.WriteString(tag)
	sb.WriteString("\n")
}

// printSortedAttrs formats a parameter map as ` key="value"` pairs in
// alphabetical key order, matching the serialiser's attribute ordering rule.
func printSortedAttrs(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(" ")
		sb.WriteString(k)
		sb.WriteString("=\"")
		sb.WriteString(params[k])
		sb.WriteString("\"")
	}
	return sb.String()
}

// defaultIndentWidth is used when the caller does not override it via config.
const defaultIndentWidth = 4
