package plugins

// coreModules is the list of plugin modules compiled into buildwire.
var coreModules = []Module{
	&AndroidModule{},
	&KotlinModule{},
	&JavaModule{},
}
