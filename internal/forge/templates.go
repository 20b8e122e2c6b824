package forge

const profileClean = `# {{.Name}}

## About
{{.About}}

## Featured Projects
- Project One: short summary and link
- Project Two: short summary and link
- Project Three: short summary and link

## Tech Stack
- Languages: Go, TypeScript, ...
- Tools: Git, Docker, ...

## Stats and Presence
- GitHub: {{.GitHubHandle}}
- Website: {{.Website}}

## Roadmap
- [ ] Next milestone
- [ ] Skill to sharpen

## License
This profile README is yours to customize.
`

const profileCute = `# {{.Name}}

> Scales polished, claws sharp, and commits steady.

## About
{{.About}}

## Featured Projects
- Project One: short summary and link
- Project Two: short summary and link
- Project Three: short summary and link

## Tech Stack
- Languages: Go, TypeScript, ...
- Tools: Git, Docker, ...

## Rituals
- Daily focus sprints
- Weekly refactor flight
- Keep the lair tidy

## Roadmap
- [ ] Next milestone
- [ ] Skill to sharpen

## License
This profile README is yours to customize.
`

const projectClean = `# {{.Title}}

## About
{{.Description}}

## Features
- Feature one
- Feature two
- Feature three

## Tech Stack
- Language: Go
- Frameworks: ...
- Tooling: ...

## Screenshots
![Screenshot placeholder](./docs/screenshot-1.png)

## Roadmap
- [ ] V1 release
- [ ] Add tests
- [ ] Polish docs

## License
Choose a license and add it here.
`

const projectCute = `# {{.Title}}

> Forged in the dragon's workshop, tuned for crisp builds.

## About
{{.Description}}

## Features
- Feature one
- Feature two
- Feature three

## Tech Stack
- Language: Go
- Frameworks: ...
- Tooling: ...

## Screenshots
![Screenshot placeholder](./docs/screenshot-1.png)

## Roadmap
- [ ] V1 release
- [ ] Add tests
- [ ] Polish docs

## License
Choose a license and add it here.
`
