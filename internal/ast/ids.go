package ast

// Distinct id types index into their own Arena, so an ExprID can never
// be passed where a StmtID is expected without the compiler noticing.
type (
	ExprID  uint32
	StmtID  uint32
	FuncID  uint32
	VarID   uint32
	ParamID uint32
	TypeID  uint32
)

// The zero value of every id type means "absent" (e.g. an omitted
// return type or initializer), matching the '?' optional fields in the
// data model.
const (
	NoExprID  ExprID  = 0
	NoStmtID  StmtID  = 0
	NoFuncID  FuncID  = 0
	NoVarID   VarID   = 0
	NoParamID ParamID = 0
	NoTypeID  TypeID  = 0
)

func (id ExprID) IsValid() bool  { return id != NoExprID }
func (id StmtID) IsValid() bool  { return id != NoStmtID }
func (id FuncID) IsValid() bool  { return id != NoFuncID }
func (id VarID) IsValid() bool   { return id != NoVarID }
func (id ParamID) IsValid() bool { return id != NoParamID }
func (id TypeID) IsValid() bool  { return id != NoTypeID }
