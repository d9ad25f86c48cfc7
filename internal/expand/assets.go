package expand

import (
	"fmt"
	"strings"

	"sitesmith/internal/spec"
)

// Root artifacts of the generated site. Fixed templates, parameterized only
// by the project name, the design tokens and the page list.

func packageJSON(slug string) string {
	return fmt.Sprintf(`{
  "name": %q,
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^18.2.0",
    "react-dom": "^18.2.0",
    "react-router-dom": "^6.8.0"
  },
  "devDependencies": {
    "@types/react": "^18.2.15",
    "@types/react-dom": "^18.2.7",
    "@vitejs/plugin-react": "^4.0.3",
    "autoprefixer": "^10.4.14",
    "postcss": "^8.4.24",
    "tailwindcss": "^3.3.0",
    "vite": "^4.4.5"
  }
}`, slug)
}

const viteConfig = `import { defineConfig } from 'vite'
import react from '@vitejs/plugin-react'

export default defineConfig({
  plugins: [react()],
})`

func tailwindConfig(tokens spec.DesignTokens) string {
	return fmt.Sprintf(`/** @type {import('tailwindcss').Config} */
export default {
  content: [
    "./index.html",
    "./src/**/*.{js,ts,jsx,tsx}",
  ],
  theme: {
    extend: {
      colors: {
        primary: '%s',
        background: '%s',
        foreground: '%s',
      },
      fontFamily: {
        heading: ['%s', 'sans-serif'],
        body: ['%s', 'sans-serif'],
      },
      borderRadius: {
        DEFAULT: '%s',
      },
    },
  },
  plugins: [],
}`, tokens.Colors.Primary, tokens.Colors.Background, tokens.Colors.Foreground,
		tokens.Font.Heading, tokens.Font.Body, tokens.Radius)
}

const postcssConfig = `export default {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
}`

func indexHTML(projectName string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <link rel="icon" type="image/svg+xml" href="/vite.svg" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>%s</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.jsx"></script>
  </body>
</html>`, projectName)
}

func readme(projectName string) string {
	return fmt.Sprintf(`# %s

A modern website built with React, Vite, and Tailwind CSS.

## Getting Started

1. Install dependencies:
`+"```bash"+`
npm install
`+"```"+`

2. Start the development server:
`+"```bash"+`
npm run dev
`+"```"+`

3. Build for production:
`+"```bash"+`
npm run build
`+"```"+`

The production build is written to the `+"`dist/`"+` directory.`, projectName)
}

const mainJSX = `import React from 'react'
import ReactDOM from 'react-dom/client'
import App from './App.jsx'
import './index.css'

ReactDOM.createRoot(document.getElementById('root')).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>,
)`

const indexCSS = `@tailwind base;
@tailwind components;
@tailwind utilities;

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', 'Oxygen',
    'Ubuntu', 'Cantarell', 'Fira Sans', 'Droid Sans', 'Helvetica Neue',
    sans-serif;
  -webkit-font-smoothing: antialiased;
  -moz-osx-font-smoothing: grayscale;
}`

func appJSX(pages []spec.Page) string {
	imports := []string{
		"import React from 'react';",
		"import { BrowserRouter as Router, Routes, Route } from 'react-router-dom';",
	}
	var routes []string
	for _, p := range pages {
		name := spec.PageName(p.Route)
		imports = append(imports, fmt.Sprintf("import %sPage from './pages/%sPage';", name, name))
		routes = append(routes, fmt.Sprintf(`        <Route path="%s" element={<%sPage />} />`, p.Route, name))
	}

	return strings.Join(imports, "\n") + `

function App() {
  return (
    <Router>
      <Routes>
` + strings.Join(routes, "\n") + `
      </Routes>
    </Router>
  );
}

export default App;`
}
