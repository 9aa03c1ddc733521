package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"qak/internal/ast"
	"qak/internal/source"
)

// ASTNodeOutput is the serializable shape of one AST node, shared by
// the JSON encoder and (via the same builder walk) the pretty printer.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Op       string          `json:"op,omitempty"`
	Literal  string          `json:"literal,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty writes an indented tree dump of the module rooted at
// mod, one node per line, with box-drawing connectors.
func FormatASTPretty(w io.Writer, mod *ast.Module, builder *ast.Builder, file *source.File) error {
	if mod == nil {
		_, err := fmt.Fprintln(w, "<no module>")
		return err
	}
	root := buildModuleNode(mod, builder, file)
	if _, err := fmt.Fprintf(w, "%s (span: %s)\n", root.label(), formatSpan(root.Span, file)); err != nil {
		return err
	}
	return writeChildren(w, root.Children, file, "")
}

func writeChildren(w io.Writer, children []ASTNodeOutput, file *source.File, prefix string) error {
	for i, child := range children {
		connector, childPrefix := "├─ ", prefix+"│  "
		if i == len(children)-1 {
			connector, childPrefix = "└─ ", prefix+"   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s (span: %s)\n", prefix, connector, child.label(), formatSpan(child.Span, file)); err != nil {
			return err
		}
		if err := writeChildren(w, child.Children, file, childPrefix); err != nil {
			return err
		}
	}
	return nil
}

func (n ASTNodeOutput) label() string {
	out := n.Type
	if n.Op != "" {
		out += " " + n.Op
	}
	if n.Literal != "" {
		out += " " + n.Literal
	}
	if n.Text != "" {
		out += fmt.Sprintf(" %q", n.Text)
	}
	return out
}

func formatSpan(sp source.Span, file *source.File) string {
	if file == nil {
		return fmt.Sprintf("%d..%d", sp.Start, sp.End)
	}
	start := file.LineCol(sp.Start)
	end := file.LineCol(sp.End)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

// BuildASTJSON converts the module into its serializable tree form.
func BuildASTJSON(mod *ast.Module, builder *ast.Builder, file *source.File) ASTNodeOutput {
	return buildModuleNode(mod, builder, file)
}

// FormatASTJSON writes the module as an indented JSON tree.
func FormatASTJSON(w io.Writer, mod *ast.Module, builder *ast.Builder, file *source.File) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildModuleNode(mod, builder, file))
}

func spanText(file *source.File, sp source.Span) string {
	if file == nil || sp.Empty() {
		return ""
	}
	return string(file.Text(sp))
}

func buildModuleNode(mod *ast.Module, builder *ast.Builder, file *source.File) ASTNodeOutput {
	node := ASTNodeOutput{Type: "Module", Span: mod.Span, Text: spanText(file, mod.Name)}
	for _, id := range mod.Functions {
		node.Children = append(node.Children, buildFuncNode(id, builder, file))
	}
	for _, id := range mod.Statements {
		node.Children = append(node.Children, buildStmtNode(id, builder, file))
	}
	return node
}

func buildTypeNode(id ast.TypeID, builder *ast.Builder, file *source.File) ASTNodeOutput {
	t := builder.Types.Get(uint32(id))
	return ASTNodeOutput{Type: "TypeSpecifier", Span: t.Span, Text: spanText(file, t.Name)}
}

func buildFuncNode(id ast.FuncID, builder *ast.Builder, file *source.File) ASTNodeOutput {
	fn := builder.Funcs.Get(uint32(id))
	node := ASTNodeOutput{Type: "Function", Span: fn.Span, Text: spanText(file, fn.Name)}
	for _, paramID := range fn.Params {
		param := builder.Params.Get(uint32(paramID))
		paramNode := ASTNodeOutput{Type: "Parameter", Span: param.Span, Text: spanText(file, param.Name)}
		if param.Type.IsValid() {
			paramNode.Children = append(paramNode.Children, buildTypeNode(param.Type, builder, file))
		}
		node.Children = append(node.Children, paramNode)
	}
	if fn.ReturnType.IsValid() {
		node.Children = append(node.Children, buildTypeNode(fn.ReturnType, builder, file))
	}
	for _, stmtID := range fn.Body {
		node.Children = append(node.Children, buildStmtNode(stmtID, builder, file))
	}
	return node
}

func buildVarNode(id ast.VarID, builder *ast.Builder, file *source.File) ASTNodeOutput {
	v := builder.Vars.Get(uint32(id))
	node := ASTNodeOutput{Type: "Variable", Span: v.Span, Text: spanText(file, v.Name)}
	if v.Type.IsValid() {
		node.Children = append(node.Children, buildTypeNode(v.Type, builder, file))
	}
	if v.Init.IsValid() {
		node.Children = append(node.Children, buildExprNode(v.Init, builder, file))
	}
	return node
}

func buildStmtNode(id ast.StmtID, builder *ast.Builder, file *source.File) ASTNodeOutput {
	stmt := builder.Stmts.Get(uint32(id))
	if stmt == nil {
		return ASTNodeOutput{Type: "<nil>"}
	}
	switch stmt.Kind {
	case ast.StmtVar:
		return buildVarNode(stmt.Var, builder, file)
	case ast.StmtWhile:
		node := ASTNodeOutput{Type: "While", Span: stmt.Span}
		node.Children = append(node.Children, buildExprNode(stmt.Condition, builder, file))
		for _, bodyID := range stmt.Body {
			node.Children = append(node.Children, buildStmtNode(bodyID, builder, file))
		}
		return node
	case ast.StmtIf:
		node := ASTNodeOutput{Type: "If", Span: stmt.Span}
		node.Children = append(node.Children, buildExprNode(stmt.Condition, builder, file))
		for _, bodyID := range stmt.Body {
			node.Children = append(node.Children, buildStmtNode(bodyID, builder, file))
		}
		for _, elseID := range stmt.FalseBlock {
			node.Children = append(node.Children, buildStmtNode(elseID, builder, file))
		}
		return node
	case ast.StmtReturn:
		node := ASTNodeOutput{Type: "Return", Span: stmt.Span}
		if stmt.Value.IsValid() {
			node.Children = append(node.Children, buildExprNode(stmt.Value, builder, file))
		}
		return node
	case ast.StmtExpr:
		return buildExprNode(stmt.Expr, builder, file)
	default:
		return ASTNodeOutput{Type: stmt.Kind.String(), Span: stmt.Span}
	}
}

func buildExprNode(id ast.ExprID, builder *ast.Builder, file *source.File) ASTNodeOutput {
	expr := builder.Exprs.Get(uint32(id))
	if expr == nil {
		return ASTNodeOutput{Type: "<nil>"}
	}
	switch expr.Kind {
	case ast.ExprTernary:
		return ASTNodeOutput{Type: "TernaryOperation", Span: expr.Span, Children: []ASTNodeOutput{
			buildExprNode(expr.Condition, builder, file),
			buildExprNode(expr.Then, builder, file),
			buildExprNode(expr.Else, builder, file),
		}}
	case ast.ExprBinary:
		return ASTNodeOutput{Type: "BinaryOperation", Span: expr.Span, Op: spanText(file, expr.OpSpan), Children: []ASTNodeOutput{
			buildExprNode(expr.Left, builder, file),
			buildExprNode(expr.Right, builder, file),
		}}
	case ast.ExprUnary:
		return ASTNodeOutput{Type: "UnaryOperation", Span: expr.Span, Op: spanText(file, expr.OpSpan), Children: []ASTNodeOutput{
			buildExprNode(expr.Operand, builder, file),
		}}
	case ast.ExprLiteral:
		return ASTNodeOutput{Type: "Literal", Span: expr.Span, Literal: expr.LiteralType.String(), Text: spanText(file, expr.Value)}
	case ast.ExprVariableAccess:
		return ASTNodeOutput{Type: "VariableAccess", Span: expr.Span, Text: spanText(file, expr.Name)}
	case ast.ExprFunctionCall:
		node := ASTNodeOutput{Type: "FunctionCall", Span: expr.Span}
		node.Children = append(node.Children, buildExprNode(expr.Target, builder, file))
		for _, argID := range expr.Arguments {
			node.Children = append(node.Children, buildExprNode(argID, builder, file))
		}
		return node
	default:
		return ASTNodeOutput{Type: expr.Kind.String(), Span: expr.Span}
	}
}
