package jvm

// Task kinds reported by the compile tasks in this package.
const (
	KindKotlinCompile = "kotlin_compile"
	KindJavaCompile   = "java_compile"
)

// CompileTask is a compile-kind task with a JVM target of its own.
type CompileTask interface {
	Name() string
	Kind() string
	TargetVersion() Version
	SetTargetVersion(v Version)
}

// KotlinCompile is a compile-kind task that carries its own JVM target,
// independent of any project-level compile options.
type KotlinCompile struct {
	name      string
	JvmTarget Version
}

// NewKotlinCompile returns a Kotlin compile task targeting target.
func NewKotlinCompile(name string, target Version) *KotlinCompile {
	return &KotlinCompile{name: name, JvmTarget: target}
}

func (t *KotlinCompile) Name() string { return t.name }
func (t *KotlinCompile) Kind() string { return KindKotlinCompile }

func (t *KotlinCompile) TargetVersion() Version     { return t.JvmTarget }
func (t *KotlinCompile) SetTargetVersion(v Version) { t.JvmTarget = v }

// JavaCompile compiles Java sources with the compile options of the project
// it belongs to. The options are shared, so later changes to the project's
// options are observed by the task until the task gets a target of its own.
type JavaCompile struct {
	name    string
	Options *CompileOptions

	targetCompatibility Version
}

// NewJavaCompile returns a Java compile task bound to options.
func NewJavaCompile(name string, options *CompileOptions) *JavaCompile {
	return &JavaCompile{name: name, Options: options}
}

func (t *JavaCompile) Name() string { return t.name }
func (t *JavaCompile) Kind() string { return KindJavaCompile }

// SourceVersion is the source compatibility of the project options.
func (t *JavaCompile) SourceVersion() Version {
	if t.Options == nil {
		return 0
	}
	return t.Options.SourceCompatibility()
}

// TargetVersion is the task's own target compatibility, falling back to the
// project options when none was set.
func (t *JavaCompile) TargetVersion() Version {
	if t.targetCompatibility.IsSet() || t.Options == nil {
		return t.targetCompatibility
	}
	return t.Options.TargetCompatibility()
}

// SetTargetVersion overrides the target compatibility for this task only.
func (t *JavaCompile) SetTargetVersion(v Version) { t.targetCompatibility = v }
