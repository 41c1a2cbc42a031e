package fold

import (
	"encoding/json"
	"fmt"
	"io"
)

// FoldFrame is one frame of a FOLD file: either the top-level "key frame"
// (fields present directly on the FOldFile) or an entry of file_frames.
// Field names mirror the FOLD specification
// (https://github.com/edemaine/fold/blob/main/doc/spec.md) exactly,
// including its mixed snake_case/camelCase convention.
type FoldFrame struct {
	FrameAuthor      string          `json:"frame_author,omitempty"`
	FrameTitle       string          `json:"frame_title,omitempty"`
	FrameDescription string          `json:"frame_description,omitempty"`
	FrameClasses     []string        `json:"frame_classes,omitempty"`
	FrameAttributes  []string        `json:"frame_attributes,omitempty"`
	FrameUnit        string          `json:"frame_unit,omitempty"`
	FrameParent      *int            `json:"frame_parent,omitempty"`
	FrameInherit     bool            `json:"frame_inherit,omitempty"`
	VerticesCoords   [][]float64     `json:"vertices_coords,omitempty"`
	VerticesVertices [][]int         `json:"vertices_vertices,omitempty"`
	VerticesFaces    [][]int         `json:"vertices_faces,omitempty"`
	EdgesVertices    [][2]int        `json:"edges_vertices,omitempty"`
	EdgesFaces       [][]int         `json:"edges_faces,omitempty"`
	EdgesAssignment  []string        `json:"edges_assignment,omitempty"`
	EdgesFoldAngle   []float64       `json:"edges_foldAngle,omitempty"`
	EdgesLength      []float64       `json:"edges_length,omitempty"`
	FacesVertices    [][]int         `json:"faces_vertices,omitempty"`
	FacesEdges       [][]int         `json:"faces_edges,omitempty"`
	FaceOrders       [][3]int        `json:"faceOrders,omitempty"`
	EdgeOrders       [][3]int        `json:"edgeOrders,omitempty"`
}

// FoldFile is the top-level FOLD document. FoldFrame is embedded
// anonymously so its fields unmarshal directly onto FoldFile, emulating
// the flattened key-frame of the FOLD spec (a document with no
// file_frames is itself a single frame).
type FoldFile struct {
	FileSpec        float64     `json:"file_spec,omitempty"`
	FileCreator     string      `json:"file_creator,omitempty"`
	FileAuthor      string      `json:"file_author,omitempty"`
	FileTitle       string      `json:"file_title,omitempty"`
	FileDescription string      `json:"file_description,omitempty"`
	FileClasses     []string    `json:"file_classes,omitempty"`
	FoldFrame
	FileFrames []FoldFrame `json:"file_frames,omitempty"`
}

// ParseFoldJSON decodes a FOLD document from r.
func ParseFoldJSON(r io.Reader) (*FoldFile, error) {
	var f FoldFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("fold: parsing FOLD document: %w", err)
	}

	return &f, nil
}
