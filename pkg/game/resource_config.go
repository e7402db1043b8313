package game

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"`
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup 一组可以一起预加载的资源
//
//	play:
//	  images:
//	    - id: IMAGE_PLAYER
//	      path: images/player.png
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
}

// ImageResource 单个图片资源定义
type ImageResource struct {
	ID   string `yaml:"id"`   // 资源ID，如 IMAGE_MONSTER
	Path string `yaml:"path"` // 相对 base_path 的文件路径
}

// SoundResource 单个音频资源定义
//
// Loop 为 true 的音频作为背景音乐加载（无限循环），否则作为单次音效。
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
	Loop bool   `yaml:"loop,omitempty"`
}

// buildFullPath constructs the full file path for a resource.
//
// Parameters:
//   - basePath: The base path from ResourceConfig (e.g., "assets")
//   - relativePath: The resource's relative path (e.g., "images/player.png")
//
// Returns:
//   - The full file path (e.g., "assets/images/player.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
