package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/meshtools/gltf"
	"github.com/meshtools/gltf/glb"
)

type bufferSummary struct {
	Index      int    `yaml:"index"`
	ByteLength uint32 `yaml:"byteLength"`
	URI        string `yaml:"uri,omitempty"`
	Embedded   bool   `yaml:"embedded"`
}

type accessorSummary struct {
	Index     int    `yaml:"index"`
	Name      string `yaml:"name,omitempty"`
	Component string `yaml:"component"`
	Type      string `yaml:"type"`
	Count     uint32 `yaml:"count"`
	Sparse    bool   `yaml:"sparse,omitempty"`
}

type summary struct {
	File       string            `yaml:"file"`
	Version    string            `yaml:"version"`
	Generator  string            `yaml:"generator,omitempty"`
	Scenes     int               `yaml:"scenes"`
	Nodes      int               `yaml:"nodes"`
	Meshes     int               `yaml:"meshes"`
	Materials  int               `yaml:"materials"`
	Animations int               `yaml:"animations"`
	Skins      int               `yaml:"skins"`
	Buffers    []bufferSummary   `yaml:"buffers"`
	Accessors  []accessorSummary `yaml:"accessors"`
}

func summarize(path string, doc *gltf.Document) *summary {
	s := &summary{
		File:       path,
		Version:    doc.Asset.Version,
		Generator:  doc.Asset.Generator,
		Scenes:     len(doc.Scenes),
		Nodes:      len(doc.Nodes),
		Meshes:     len(doc.Meshes),
		Materials:  len(doc.Materials),
		Animations: len(doc.Animations),
		Skins:      len(doc.Skins),
	}
	for i, b := range doc.Buffers {
		s.Buffers = append(s.Buffers, bufferSummary{
			Index:      i,
			ByteLength: b.ByteLength,
			URI:        shortURI(b.URI),
			Embedded:   b.URI == "" && b.Data != nil,
		})
	}
	for i, a := range doc.Accessors {
		s.Accessors = append(s.Accessors, accessorSummary{
			Index:     i,
			Name:      a.Name,
			Component: a.ComponentType.String(),
			Type:      a.Type.String(),
			Count:     a.Count,
			Sparse:    a.Sparse != nil,
		})
	}
	return s
}

func shortURI(uri string) string {
	if strings.HasPrefix(uri, "data:") {
		return "data:..."
	}
	return uri
}

func info(input string, asYAML bool) error {
	doc, err := gltf.Open(input)
	if err != nil {
		return err
	}
	s := summarize(input, doc)
	if asYAML {
		out, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		os.Stdout.Write(out)
		return nil
	}
	fmt.Printf("%s: glTF %s", s.File, s.Version)
	if s.Generator != "" {
		fmt.Printf(" (%s)", s.Generator)
	}
	fmt.Printf("\n  scenes=%d nodes=%d meshes=%d materials=%d animations=%d skins=%d\n",
		s.Scenes, s.Nodes, s.Meshes, s.Materials, s.Animations, s.Skins)
	for _, b := range s.Buffers {
		fmt.Printf("  buffer %d: %d bytes embedded=%v %s\n", b.Index, b.ByteLength, b.Embedded, b.URI)
	}
	for _, a := range s.Accessors {
		sparse := ""
		if a.Sparse {
			sparse = " sparse"
		}
		fmt.Printf("  accessor %d: %s %s x%d%s %s\n", a.Index, a.Component, a.Type, a.Count, sparse, a.Name)
	}
	return nil
}

func unpack(input, jsonPath, binPath string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	jsonData, bin, err := glb.DecodeBytes(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return err
	}
	log.Print("json: ", jsonPath)
	if bin != nil && binPath != "" {
		if err := os.WriteFile(binPath, bin, 0644); err != nil {
			return err
		}
		log.Print("bin: ", binPath)
	}
	return nil
}

func pack(input, binPath, output string) error {
	jsonData, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	var bin []byte
	if binPath != "" {
		if bin, err = os.ReadFile(binPath); err != nil {
			return err
		}
	}
	w, err := os.Create(output)
	if err != nil {
		return err
	}
	defer w.Close()
	log.Print("out: ", output)
	return glb.Encode(w, jsonData, bin)
}

func replaceExt(path, ext string) string {
	for _, old := range []string{".glb", ".gltf", ".json"} {
		if strings.HasSuffix(strings.ToLower(path), old) {
			return path[:len(path)-len(old)] + ext
		}
	}
	return path + ext
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.glb\n", os.Args[0])
		flag.PrintDefaults()
	}
	doUnpack := flag.Bool("unpack", false, "split a .glb into its JSON and BIN chunks")
	doPack := flag.Bool("pack", false, "pack a .gltf JSON (plus -bin) into a .glb")
	asYAML := flag.Bool("yaml", false, "print the summary as YAML")
	jsonPath := flag.String("json", "", "JSON chunk path (default: input with .json)")
	binPath := flag.String("bin", "", "BIN chunk path")
	output := flag.String("o", "", "output path for -pack (default: input with .glb)")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	var err error
	switch {
	case *doUnpack:
		jp := *jsonPath
		if jp == "" {
			jp = replaceExt(input, ".json")
		}
		bp := *binPath
		if bp == "" {
			bp = replaceExt(input, ".bin")
		}
		err = unpack(input, jp, bp)
	case *doPack:
		out := *output
		if out == "" {
			out = replaceExt(input, ".glb")
		}
		err = pack(input, *binPath, out)
	default:
		err = info(input, *asYAML)
	}
	if err != nil {
		log.Fatal(err)
	}
}
