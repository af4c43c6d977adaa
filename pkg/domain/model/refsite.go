// 指示: miu200521358
package model

// ReferenceSiteKind は参照サイトの種別を表す。
type ReferenceSiteKind string

const (
	// ReferenceSiteKindParent は親参照フィールドを表す。
	ReferenceSiteKindParent ReferenceSiteKind = "parent"
	// ReferenceSiteKindConstraint はコンストレイントのターゲットフィールドを表す。
	ReferenceSiteKindConstraint ReferenceSiteKind = "constraint_target"
	// ReferenceSiteKindModifier はモディファイアのオブジェクト入力を表す。
	ReferenceSiteKindModifier ReferenceSiteKind = "modifier_input"
	// ReferenceSiteKindNodeSocket はノードグラフのオブジェクト入力ソケットを表す。
	ReferenceSiteKindNodeSocket ReferenceSiteKind = "node_socket"
)

// IReferenceSite はオブジェクト参照を保持し書き換え可能なフィールドの契約を表す。
type IReferenceSite interface {
	// Kind はサイト種別を返す。
	Kind() ReferenceSiteKind
	// Target は現在参照しているオブジェクトを返す。
	Target() ObjectHandle
	// Rewrite は参照先を書き換える。
	Rewrite(handle ObjectHandle)
}

// ISiteCollector は1種別分の参照サイト列挙契約を表す。
type ISiteCollector interface {
	// Kind は列挙対象のサイト種別を返す。
	Kind() ReferenceSiteKind
	// Collect はシーン内の該当サイトを登録順に列挙する。
	Collect(scene *Scene) []IReferenceSite
}

// SiteRegistry は参照サイト種別の登録簿を表す。
// 新しい参照保持構造はコレクタ追加だけで書き換え対象に含められる。
type SiteRegistry struct {
	collectors []ISiteCollector
}

// NewSiteRegistry は指定コレクタのみを持つ登録簿を生成する。
func NewSiteRegistry(collectors ...ISiteCollector) *SiteRegistry {
	return &SiteRegistry{collectors: collectors}
}

// DefaultSiteRegistry は全標準サイト種別を登録した登録簿を生成する。
func DefaultSiteRegistry() *SiteRegistry {
	return NewSiteRegistry(
		NewParentSiteCollector(),
		NewConstraintSiteCollector(),
		NewModifierSiteCollector(),
		NewNodeSocketSiteCollector(),
	)
}

// Register はコレクタを追加登録する。
func (r *SiteRegistry) Register(collector ISiteCollector) {
	r.collectors = append(r.collectors, collector)
}

// Kinds は登録済みサイト種別を返す。
func (r *SiteRegistry) Kinds() []ReferenceSiteKind {
	kinds := make([]ReferenceSiteKind, 0, len(r.collectors))
	for _, collector := range r.collectors {
		kinds = append(kinds, collector.Kind())
	}
	return kinds
}

// CollectAll は全登録コレクタのサイトをまとめて列挙する。
func (r *SiteRegistry) CollectAll(scene *Scene) []IReferenceSite {
	sites := []IReferenceSite{}
	for _, collector := range r.collectors {
		sites = append(sites, collector.Collect(scene)...)
	}
	return sites
}

// parentSite はオブジェクトの親参照フィールドを表す。
type parentSite struct {
	object *SceneObject
}

func (p *parentSite) Kind() ReferenceSiteKind { return ReferenceSiteKindParent }
func (p *parentSite) Target() ObjectHandle    { return p.object.Parent.Parent }
func (p *parentSite) Rewrite(handle ObjectHandle) {
	p.object.Parent.Parent = handle
}

// parentSiteCollector は親参照サイトのコレクタを表す。
type parentSiteCollector struct{}

// NewParentSiteCollector は親参照サイトのコレクタを生成する。
func NewParentSiteCollector() ISiteCollector { return &parentSiteCollector{} }

func (c *parentSiteCollector) Kind() ReferenceSiteKind { return ReferenceSiteKindParent }
func (c *parentSiteCollector) Collect(scene *Scene) []IReferenceSite {
	sites := []IReferenceSite{}
	for _, object := range scene.ObjectsInOrder() {
		if object.Parent != nil {
			sites = append(sites, &parentSite{object: object})
		}
	}
	return sites
}

// constraintSite はコンストレイントのターゲットフィールドを表す。
type constraintSite struct {
	constraint *Constraint
}

func (s *constraintSite) Kind() ReferenceSiteKind { return ReferenceSiteKindConstraint }
func (s *constraintSite) Target() ObjectHandle    { return s.constraint.Target }
func (s *constraintSite) Rewrite(handle ObjectHandle) {
	s.constraint.Target = handle
}

// constraintSiteCollector はコンストレイントサイトのコレクタを表す。
type constraintSiteCollector struct{}

// NewConstraintSiteCollector はコンストレイントサイトのコレクタを生成する。
func NewConstraintSiteCollector() ISiteCollector { return &constraintSiteCollector{} }

func (c *constraintSiteCollector) Kind() ReferenceSiteKind { return ReferenceSiteKindConstraint }
func (c *constraintSiteCollector) Collect(scene *Scene) []IReferenceSite {
	sites := []IReferenceSite{}
	for _, object := range scene.ObjectsInOrder() {
		for i := range object.Constraints {
			sites = append(sites, &constraintSite{constraint: &object.Constraints[i]})
		}
	}
	return sites
}

// modifierSite はモディファイアのオブジェクト入力フィールドを表す。
type modifierSite struct {
	input *ModifierInput
}

func (s *modifierSite) Kind() ReferenceSiteKind { return ReferenceSiteKindModifier }
func (s *modifierSite) Target() ObjectHandle    { return s.input.Object }
func (s *modifierSite) Rewrite(handle ObjectHandle) {
	s.input.Object = handle
}

// modifierSiteCollector はモディファイア入力サイトのコレクタを表す。
type modifierSiteCollector struct{}

// NewModifierSiteCollector はモディファイア入力サイトのコレクタを生成する。
func NewModifierSiteCollector() ISiteCollector { return &modifierSiteCollector{} }

func (c *modifierSiteCollector) Kind() ReferenceSiteKind { return ReferenceSiteKindModifier }
func (c *modifierSiteCollector) Collect(scene *Scene) []IReferenceSite {
	sites := []IReferenceSite{}
	for _, object := range scene.ObjectsInOrder() {
		for i := range object.Modifiers {
			modifier := &object.Modifiers[i]
			for j := range modifier.Inputs {
				sites = append(sites, &modifierSite{input: &modifier.Inputs[j]})
			}
		}
	}
	return sites
}

// nodeSocketSite はノードグラフのオブジェクト入力ソケットを表す。
type nodeSocketSite struct {
	socket *ObjectSocket
}

func (s *nodeSocketSite) Kind() ReferenceSiteKind { return ReferenceSiteKindNodeSocket }
func (s *nodeSocketSite) Target() ObjectHandle    { return s.socket.Object }
func (s *nodeSocketSite) Rewrite(handle ObjectHandle) {
	s.socket.Object = handle
}

// nodeSocketSiteCollector はノードソケットサイトのコレクタを表す。
type nodeSocketSiteCollector struct{}

// NewNodeSocketSiteCollector はノードソケットサイトのコレクタを生成する。
func NewNodeSocketSiteCollector() ISiteCollector { return &nodeSocketSiteCollector{} }

func (c *nodeSocketSiteCollector) Kind() ReferenceSiteKind { return ReferenceSiteKindNodeSocket }
func (c *nodeSocketSiteCollector) Collect(scene *Scene) []IReferenceSite {
	sites := []IReferenceSite{}
	for _, group := range scene.NodeGroups {
		for _, node := range group.Nodes {
			for i := range node.Sockets {
				sites = append(sites, &nodeSocketSite{socket: &node.Sockets[i]})
			}
		}
	}
	return sites
}
