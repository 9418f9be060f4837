package repository

import "encoding/xml"

// Pom represents the key information from a Maven POM file
type Pom struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Name       string `xml:"name"`
	Parent     *Pom   `xml:"parent"`
}

// ParsePom decodes a POM, the group and version are inherited from the parent when omitted
func ParsePom(data []byte) (*Pom, error) {
	pom := &Pom{}
	if err := xml.Unmarshal(data, pom); err != nil {
		return nil, err
	}
	if pom.Parent != nil {
		if pom.GroupID == "" {
			pom.GroupID = pom.Parent.GroupID
		}
		if pom.Version == "" {
			pom.Version = pom.Parent.Version
		}
	}
	return pom, nil
}

// ProjectName returns the display name, or the artifact id when no name is declared
func (p *Pom) ProjectName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ArtifactID
}
